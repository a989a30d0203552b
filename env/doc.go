// Package env supplies environment-variable overrides for child processes.
//
// The attach provider asks an env.Provider for a map of overrides and merges
// it over the current process environment before running the process
// listing command. Two providers ship with the package:
//
//   - FileProvider reads a dotenv style file (KEY=value per line, # comments,
//     optional single or double quotes around values). A missing file yields
//     no overrides.
//   - StaticProvider returns a fixed map, which is handy in tests.
//
// # Usage
//
//	provider := &env.FileProvider{Path: ".env"}
//	overrides, err := provider.Environment(ctx)
//	if err != nil {
//		// handle error
//	}
//	cmd.Env = env.MergeSlice(os.Environ(), overrides)
//
// # Helper Functions
//
//   - MapToSlice: Convert map[string]string to []string (KEY=VALUE format)
//   - SliceToMap: Convert []string to map[string]string (skips malformed entries)
//   - MergeSlice: Apply a map of overrides to a KEY=VALUE slice
package env
