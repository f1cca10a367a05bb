package service

import (
	"github.com/paydev-web/dmlabs-client/internal/adapter"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/store"
)

// ClientServices bundles the client-side services behind their interfaces.
type ClientServices struct {
	SessionService  ClientSessionService
	AuthService     ClientAuthService
	CatalogService  ClientCatalogService
	ProgressService ClientProgressService
}

// NewClientServices wires the services over the local store and the backend
// adapter.
func NewClientServices(localStore *store.ClientStorages, backend adapter.BackendAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:  NewClientSessionService(localStore, log),
		AuthService:     NewClientAuthService(localStore, backend, log),
		CatalogService:  NewClientCatalogService(backend, log),
		ProgressService: NewClientProgressService(localStore, log),
	}
}
