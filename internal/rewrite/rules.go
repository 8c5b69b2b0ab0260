package rewrite

// The rulesets below convert printf-style log.Printf calls into leveled
// charmbracelet/log calls. Each pattern is pinned to one exact message
// template so rules cannot overlap; order still matters because later
// rules run against already-rewritten content.

// coreRules covers the general server log statements.
var coreRules = []Rule{
	newRule("error-with-value", "error",
		`log\.Printf\("Error ([^:]+): %v", ([a-zA-Z0-9_.]+)\)`,
		`log.Error("Error $1", "error", $2)`),
	newRule("player-joined", "info",
		`log\.Printf\("New player %s joined\. Setting spawn position at \(%f, %f\)",\s+playerID, posX, posZ\)`,
		`log.Info("New player joined", "playerID", playerID, "posX", posX, "posZ", posZ)`),
	newRule("player-position", "debug",
		`log\.Printf\("Updated player %s at position \(%f, %f, %f\)",\s+playerID,\s+update\.Position\.X,\s+update\.Position\.Y,\s+update\.Position\.Z\)`,
		`log.Debug("Updated player position", "playerID", playerID, "x", update.Position.X, "y", update.Position.Y, "z", update.Position.Z)`),
	newRule("shell-rejected", "debug",
		`log\.Printf\("Rejected shell firing from player %s: cooldown in effect", playerID\)`,
		`log.Debug("Rejected shell firing", "playerID", playerID, "reason", "cooldown in effect")`),
	newRule("shell-added", "debug",
		`log\.Printf\("Added new shell %s from player %s", newShell\.ID, playerID\)`,
		`log.Debug("Added new shell", "shellID", newShell.ID, "playerID", playerID)`),
}

// combatRules covers the damage, health and destruction statements.
var combatRules = []Rule{
	newRule("invalid-hit", "debug",
		`log\.Printf\("INVALID HIT: Tank %s is already destroyed, ignoring hit", ([a-zA-Z0-9_.]+)\)`,
		`log.Debug("Invalid hit on destroyed tank", "targetID", $1)`),
	newRule("damage", "debug",
		`log\.Printf\("DAMAGE: Tank %s hit on %s for %d damage by %s",\s+([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+)\)`,
		`log.Debug("Tank hit", "targetID", $1, "location", $2, "damage", $3, "sourceID", $4)`),
	newRule("damage-capped", "warn",
		`log\.Printf\("EXCESSIVE DAMAGE CAPPED: Reducing %d to 50 for tank %s",\s+([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+)\)`,
		`log.Warn("Excessive damage capped", "original", $1, "capped", 50, "targetID", $2)`),
	newRule("health-before", "debug",
		`log\.Printf\("HEALTH UPDATE: Tank %s health before hit: %d", ([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+)\)`,
		`log.Debug("Tank health before hit", "targetID", $1, "health", $2)`),
	newRule("health-after", "debug",
		`log\.Printf\("HEALTH UPDATE: Tank %s health after hit: %d", ([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+)\)`,
		`log.Debug("Tank health after hit", "targetID", $1, "health", $2)`),
	newRule("kill-count", "debug",
		`log\.Printf\("Incremented kill count for player %s to %d", ([a-zA-Z0-9_.]+), ([a-zA-Z0-9_.]+)\)`,
		`log.Debug("Incremented kill count", "playerID", $1, "kills", $2)`),
	newRule("destruction", "info",
		`log\.Printf\("DESTRUCTION: %s", ([a-zA-Z0-9_.]+)\)`,
		`log.Info("Tank destroyed", "message", $1)`),
	newRule("tank-missing", "warn",
		`log\.Printf\("Target tank %s not found - creating placeholder entry", ([a-zA-Z0-9_.]+)\)`,
		`log.Warn("Target tank not found", "targetID", $1, "action", "creating placeholder")`),
}

// CoreRules returns the general server ruleset in application order.
func CoreRules() []Rule {
	return append([]Rule(nil), coreRules...)
}

// CombatRules returns the damage/health/destruction ruleset.
func CombatRules() []Rule {
	return append([]Rule(nil), combatRules...)
}

// AllRules returns both rulesets, core first.
func AllRules() []Rule {
	all := make([]Rule, 0, len(coreRules)+len(combatRules))
	all = append(all, coreRules...)
	return append(all, combatRules...)
}
