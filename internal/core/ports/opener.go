package ports

// Opener reveals a path in the host file browser.
//
//go:generate mockgen -source=opener.go -destination=mocks/mock_opener.go -package=mocks
type Opener interface {
	Open(path string) error
}
