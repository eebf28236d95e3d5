package contracts

import "github.com/julienschmidt/httprouter"

// Handler mounts its routes on a service router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
