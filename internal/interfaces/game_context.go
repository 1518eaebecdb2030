// internal/interfaces/game_context.go
package interfaces

import "go-path-defense/internal/component"

// GameContext is the part of the game the systems report back to when an
// enemy leaves the field. It lets system avoid importing app.
type GameContext interface {
	// CreditBounty adds the enemy's bounty to the wallet.
	CreditBounty(enemy *component.Enemy)
	// LoseLife takes one life for a leaked enemy and reports whether this
	// leak ended the game.
	LoseLife(enemy *component.Enemy) (gameOver bool)
}
