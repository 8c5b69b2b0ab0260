// One-shot pass over the game server source for the damage, health and
// destruction log statements. The pass it reproduces took no backup;
// this one does, so both passes leave a <target>.bak behind.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/space-cowboy/logmend/internal/patch"
	"github.com/space-cowboy/logmend/internal/rewrite"
)

const defaultTarget = "game/manager.go"

func main() {
	_ = godotenv.Load()

	target := defaultTarget
	if env := os.Getenv("LOGMEND_TARGET"); env != "" {
		target = env
	}
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	preview, err := patch.Scan(target, rewrite.CombatRules(), false)
	if err != nil {
		log.Fatal("scan failed", "file", target, "error", err)
	}

	if _, err := patch.Apply(preview, true); err != nil {
		log.Fatal("apply failed", "file", target, "error", err)
	}

	fmt.Println("Updated more log statements")
}
