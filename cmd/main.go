package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/va6996/tinyagent/agent"
	"github.com/va6996/tinyagent/config"
	logcontext "github.com/va6996/tinyagent/context"
	"github.com/va6996/tinyagent/log"
	"github.com/va6996/tinyagent/tools"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	zoneFlag := flag.String("tz", "", "default timezone (overrides config)")
	traceFlag := flag.Bool("trace", false, "print tool invocations for each turn")
	flag.Parse()

	log.Init()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(cfg.Log.Level)

	zone := cfg.Agent.DefaultTimezone
	if *zoneFlag != "" {
		zone = *zoneFlag
	}
	showTrace := cfg.Agent.ShowToolTrace || *traceFlag

	registry := tools.NewRegistry()
	tools.NewClockTool(registry)
	tools.NewCalculatorTool(registry)
	tools.NewPlannerTool(registry)
	a := agent.New(registry)

	fmt.Println("tinyagent: calculator, time lookup and planner. Ctrl+D to quit.")
	fmt.Printf("default timezone: %s\n\n", zone)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		ctx := logcontext.WithRequestID(context.Background(), logcontext.NewRequestID())
		reply := a.Run(ctx, line, zone)

		if showTrace {
			for _, inv := range reply.Invocations {
				fmt.Printf("🛠️  %s\n   input: %s\n   result: %s\n", inv.Tool, inv.Input, inv.Result)
			}
			if len(reply.Invocations) > 0 {
				fmt.Println("---")
			}
		}
		fmt.Println(reply.Text)
		fmt.Println()
	}
}
