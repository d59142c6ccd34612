// tflap is a flappy-bird style arcade game for the terminal.
//
// Usage:
//
//	tflap                    - Play
//	tflap highscore          - Print the stored high score
//	tflap highscore --reset  - Clear the stored high score
//	tflap scores             - Show the per-player leaderboard (sqlite backend)
//	tflap serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>          - Config file (default search: ~/.tflap/config.yaml, ./configs/tflap.yaml)
//	--fps <rate>             - Simulation tick rate (10-60)
//	--seed <value>           - RNG seed for reproducible obstacles
//	--storage <file|sqlite>  - High score backend
//	--highscore-file <path>  - High score file for the file backend
//	--db <path>              - Database path for the sqlite backend
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
