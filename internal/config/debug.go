package config

import "os"

func IsDebug() bool {
	return os.Getenv("LEX_DEBUG") == "1"
}
