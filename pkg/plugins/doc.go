// Package plugins runs user extensions at fixed points of the inputbox flow.
//
// A plugin contributes callbacks, each bound to a Position and a priority.
// When a position fires, its callbacks run in ascending priority order until
// one of them returns false. Plugins come from two places:
//
//   - In-process plugins added with Manager.Register.
//   - Directories under the plugins dir, each holding a plugin.toml manifest
//     whose hooks run external commands.
//
// A plugin directory whose name ends in ".disabled" is loaded but never
// fired. Once a first scan has been recorded, directories that appear later
// are renamed to their disabled form until the user enables them.
package plugins
