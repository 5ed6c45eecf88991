package config

// ImageConfig sets the canvas geometry of the rendered stats image.
type ImageConfig struct {
	Width  int
	Height int
	Scale  int
}

func loadImage() ImageConfig {
	return ImageConfig{
		Width:  intEnvOrDefault(envImageWidth, defaultImageWidth),
		Height: intEnvOrDefault(envImageHeight, defaultImageHeight),
		Scale:  intEnvOrDefault(envImageScale, defaultImageScale),
	}
}
