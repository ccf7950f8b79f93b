package animation

// Package animation implements the falling-droplet background: an explicit
// stepping engine that spawns, advances, draws and retires droplets, and a
// ticker loop that drives it until its context is cancelled.
