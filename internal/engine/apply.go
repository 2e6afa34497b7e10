package engine

// Apply functions fold a decision into a snapshot, producing the state an
// unconfirmed client projection shows before the authoritative result
// arrives. The commit path persists the same write sets row by row, so a
// projection built here always matches what the server ends up storing.

// ApplyJoin returns the snapshot after a join decision
func ApplyJoin(snap *Snapshot, d *JoinDecision) *Snapshot {
	out := snap.Clone()
	out.Players = append(out.Players, d.Player)
	out.Room.Phase = d.Phase
	return out
}

// ApplyFleet returns the snapshot after a fleet placement decision
func ApplyFleet(snap *Snapshot, d *FleetDecision) *Snapshot {
	out := snap.Clone()
	for i := range out.Players {
		if out.Players[i].ID == d.Player.ID {
			out.Players[i] = d.Player
		}
	}
	out.Ships = append(out.Ships, d.Ships...)
	out.Room.Phase = d.Phase
	if d.TurnPlayerID != nil {
		id := *d.TurnPlayerID
		out.Room.TurnPlayerID = &id
	}
	return out
}

// ApplyAttack returns the snapshot after an attack decision
func ApplyAttack(snap *Snapshot, d *AttackDecision) *Snapshot {
	out := snap.Clone()
	out.Guesses = append(out.Guesses, d.Guess)
	if d.SunkShipID != nil {
		for i := range out.Ships {
			if out.Ships[i].ID == *d.SunkShipID {
				out.Ships[i].Sunk = true
			}
		}
	}
	out.Room.Phase = d.Phase
	if d.TurnPlayerID != nil {
		id := *d.TurnPlayerID
		out.Room.TurnPlayerID = &id
	} else {
		out.Room.TurnPlayerID = nil
	}
	if d.WinnerID != nil {
		winner := *d.WinnerID
		out.Room.WinnerActorID = &winner
	}
	return out
}
