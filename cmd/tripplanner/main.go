package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	lib "github.com/TSRCHARAN/TripPlanner"
	"github.com/TSRCHARAN/TripPlanner/config"
	"github.com/TSRCHARAN/TripPlanner/transport"
)

func main() {
	mode := flag.String("mode", "serve", "serve|plan")
	configPath := flag.String("config", "", "config file path (defaults to config.yml)")
	from := flag.String("from", "", "origin place name")
	to := flag.String("to", "", "destination place name")
	date := flag.String("date", "", "journey date (YYYY-MM-DD)")
	returnDate := flag.String("return", "", "return date (YYYY-MM-DD), enables round trip")
	budget := flag.Float64("budget", 0, "fare budget")
	avoid := flag.String("avoid", "", "comma-separated modes to avoid: train,bus,flight")
	startTime := flag.String("startTime", "", "preferred start slot: morning|afternoon|evening|night")
	returnTime := flag.String("returnTime", "", "preferred return slot")
	flag.Parse()

	// .env is optional; the config loader falls back to real env vars.
	_ = godotenv.Load()
	lib.InitLogging()

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := lib.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	switch *mode {
	case "serve":
		app.StartServer()
		app.HandleGracefulShutdown()
	case "plan":
		if *from == "" || *to == "" {
			log.Fatal("plan mode requires -from and -to")
		}
		prefs := transport.Preferences{
			FromLocation:        *from,
			ToLocation:          *to,
			StartDate:           *date,
			ReturnDate:          *returnDate,
			Budget:              *budget,
			PreferredStartTime:  *startTime,
			PreferredReturnTime: *returnTime,
			AvoidModes:          parseAvoidModes(*avoid),
		}
		plan, err := app.Planner().PlanTrip(context.Background(), prefs)
		if err != nil {
			log.Fatalf("plan: %v", err)
		}
		buf, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			log.Fatalf("encode: %v", err)
		}
		fmt.Println(string(buf))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func parseAvoidModes(csv string) []transport.Mode {
	var modes []transport.Mode
	for _, raw := range strings.Split(csv, ",") {
		if m, ok := transport.ParseMode(raw); ok {
			modes = append(modes, m)
		}
	}
	return modes
}
