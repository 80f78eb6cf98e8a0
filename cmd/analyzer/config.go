package main

type Config struct {
	LogLevel      string `env:"LOG_LEVEL,default=info"`
	CacheFilepath string `env:"CACHE_FILEPATH"`
	Debug         bool   `env:"DEBUG,default=false"`
}
