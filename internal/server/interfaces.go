package server

// Server is the lifecycle of the process: RunServer blocks until a stop
// signal arrives and everything has been shut down.
type Server interface {
	RunServer()
	Shutdown()
}
