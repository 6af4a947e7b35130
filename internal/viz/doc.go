// Package viz provides the terminal live view for a running integration.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: steps a system through its stepper in real time and charts
//     one state component with asciigraph
//   - [Sparkline]: compact inline chart for step-size and metric series
//
// # Key Bindings
//
//	Space - Pause/Resume integration
//	R     - Reset to the initial state
//	Tab   - Cycle the charted component
//	Up/K  - Integrate faster (more steps per frame)
//	Down/J - Integrate slower
//	Q     - Quit
package viz
