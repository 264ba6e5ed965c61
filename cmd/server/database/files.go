package database

// FileRemover removes objects from storage buckets. Satisfied by
// storage.Uploader; repositories use it for the best-effort cleanup of a
// resource's stored files when the row is deleted.
type FileRemover interface {
	Remove(bucket string, paths []string) error
}
