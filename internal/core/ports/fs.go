package ports

// FileSystem copies and fingerprints directory trees.
//
//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks
type FileSystem interface {
	// CopyTree copies every file under src into dst, preserving relative paths.
	CopyTree(src, dst string) error
	// HashTree returns a stable content hash of every file under root.
	HashTree(root string) (string, error)
}
