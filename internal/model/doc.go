package model

// Package model defines domain data structures shared by the engines and the UI:
// calculator state snapshots, arithmetic operators, animation droplets, and theme
// modes. Structures are plain values so the UI can render them without locking.
