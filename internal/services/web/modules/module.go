// Package modules assembles the web feature modules.
package modules

import (
	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Store is the persistence shared by the registration and admin modules.
type Store interface {
	storage.RegistrantStore
	storage.WorkshopRegistrantStore
}

// Dependencies carries what the feature modules need. Modules receive only
// the narrow interfaces they declare, never the concrete store.
type Dependencies struct {
	Store Store
	Base  publichandler.Base
}
