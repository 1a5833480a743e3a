package allowance

import (
	"google.golang.org/grpc"

	"github.com/oggyb/interview-match/internal/api"
	"github.com/oggyb/interview-match/internal/app"
)

// Registrar ties the Allowance service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	api.RegisterAllowanceServiceServer(s, NewAllowanceService(r.appCtx))
}
