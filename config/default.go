package config

func GetDefault() Config {
	return Config{
		Format: FormatText,
	}
}
