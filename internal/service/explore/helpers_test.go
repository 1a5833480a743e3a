package explore_test

import (
	"fmt"

	"github.com/oggyb/interview-match/internal/db"
)

func newUser(id uint64) *db.User {
	return &db.User{ID: id, DisplayName: fmt.Sprintf("user%d", id), ProfileComplete: true}
}
