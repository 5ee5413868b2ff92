package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	_ "image/gif" // register decoders for ProbeImageSize/LoadImage
)

// ImageToJpgBuffer Convert an image to a jpg buffer to write to output
func ImageToJpgBuffer(image image.Image, options *jpeg.Options) ([]byte, error) {
	buf := new(bytes.Buffer)

	err := jpeg.Encode(buf, image, options)
	if err != nil {
		return nil, errors.New("jpeg encode error")
	}
	return buf.Bytes(), nil
}

// ImageToPngBuffer Convert an image to a png buffer to write to output
func ImageToPngBuffer(image image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)

	err := png.Encode(buf, image)
	if err != nil {
		return nil, errors.New("png encode error")
	}
	return buf.Bytes(), nil
}

// LoadImage Decode an image file from disk
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ProbeImageSize Read only the header of an image file to get its native
// pixel dimensions
func ProbeImageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
