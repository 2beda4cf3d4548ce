package interfaces

type RefresherInterface interface {
	Init() error
	Stop()
	Restore() error
}
