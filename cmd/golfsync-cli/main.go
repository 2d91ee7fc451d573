package main

import (
	"context"

	"golfsync-backend/cmd/golfsync-cli/commands"
	"golfsync-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "golfsync-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
