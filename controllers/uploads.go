package controllers

import (
	"os"
	"path"
	"path/filepath"

	"github.com/yeremiapane/food-review-app/utils"
)

// UploadStore menyimpan artefak gambar hasil normalisasi di bawah satu
// direktori root (default public/uploads). Nilai yang disimpan di database
// adalah path relatif terhadap root, mis. "food_images/food-... .jpg".
type UploadStore struct {
	Root string
}

func NewUploadStore(root string) *UploadStore {
	if root == "" {
		root = filepath.Join("public", "uploads")
	}
	return &UploadStore{Root: root}
}

// Save menulis artefak ke subdir dan mengembalikan path relatifnya.
func (us *UploadStore) Save(subdir string, artifact *utils.ImageArtifact) (string, error) {
	dir := filepath.Join(us.Root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(dir, artifact.Name), artifact.Data, 0644); err != nil {
		return "", err
	}

	return path.Join(subdir, artifact.Name), nil
}

// Remove menghapus artefak lama. Kegagalan hapus file hanya dicatat,
// record database sudah konsisten.
func (us *UploadStore) Remove(stored string) {
	if stored == "" {
		return
	}
	if err := os.Remove(filepath.Join(us.Root, filepath.FromSlash(stored))); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("Error removing artifact %s: %v", stored, err)
	}
}

// Path mengembalikan lokasi file artefak di disk.
func (us *UploadStore) Path(stored string) string {
	return filepath.Join(us.Root, filepath.FromSlash(stored))
}
