package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"time"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Kualitas JPEG hasil kompresi, mengikuti artefak lama supaya ukuran file konsisten.
const imageQuality = 50

// ErrImageDecode dikembalikan jika input bukan gambar yang bisa dibaca.
var ErrImageDecode = errors.New("file gambar tidak dapat dibaca")

// ImageArtifact adalah hasil normalisasi gambar yang siap disimpan.
type ImageArtifact struct {
	Name        string
	ContentType string
	Size        int
	Data        []byte
}

// CompressImage menormalkan gambar upload apa pun (PNG, GIF, WebP, BMP, TIFF,
// JPEG) menjadi JPEG terkompresi. Mode warna selain RGB (palette, alpha)
// dikonversi dulu ke RGB. Nama file baru: {prefix}-{YYYYMMDD HHMMSS}.jpg.
// Fungsi ini murni transform; penyimpanan dan penghapusan artefak lama
// menjadi tanggung jawab pemanggil.
func CompressImage(data []byte, prefix string) (*ImageArtifact, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	// Konversi ke RGB, buang alpha/palette
	bounds := src.Bounds()
	rgb := image.NewRGBA(bounds)
	draw.Draw(rgb, bounds, src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: imageQuality}); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s.jpg", prefix, time.Now().Format("20060102 150405"))

	return &ImageArtifact{
		Name:        name,
		ContentType: "image/jpeg",
		Size:        buf.Len(),
		Data:        buf.Bytes(),
	}, nil
}
