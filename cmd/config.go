package main

import "time"

// Defaults mirror the dataset the application historically shipped
// with: nine users, ten conversations, a hundred messages.
type Config struct {
	EnableSyntheticData bool          `env:"ENABLE_SYNTHETIC_DATA,required=true"`
	UserCount           int           `env:"USER_COUNT,default=9"`
	ConversationCount   int           `env:"CONVERSATION_COUNT,default=10"`
	MessageCount        int           `env:"MESSAGE_COUNT,default=100"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,required=true"`
	AuthTokenDuration   time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	DebugPort           int           `env:"DEBUG_PORT,default=8080"`
}
