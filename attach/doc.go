// Package attach builds the list of local processes a debugger can attach to.
//
// The pipeline is linear:
//
//  1. detect the operating system family (package platform);
//  2. pick the Lister for it: a ProcessListCommand paired with the Parser
//     that understands its output;
//  3. on Windows, probe for PowerShell with `where powershell` and fall back
//     to WMIC when the lookup fails or prints nothing;
//  4. run the command through an Executor, treating stderr output as failure;
//  5. parse stdout into AttachItem records, dropping lines that do not parse;
//  6. rank the records so python processes come first.
//
// # Usage
//
//	provider := attach.NewProvider(cmdutil.NewPlainExecutor(30*time.Second),
//		attach.WithEnvironment(&env.FileProvider{Path: ".env"}),
//	)
//	items, err := provider.GetAttachItems(ctx)
//	if errors.Is(err, attach.ErrUnsupportedPlatform) {
//		// tell the user
//	}
//
// # Ranking
//
// A record is python-like when its process name starts with "python". Python
// records sort before all others and are ordered among themselves by command
// line; the rest are ordered by process name. Both comparisons ignore case and
// the sort is stable.
//
// # Errors
//
// Only two failures reach callers: *UnsupportedPlatformError (matches
// ErrUnsupportedPlatform) and whatever error the Executor returned for the
// listing command, unchanged. A failed PowerShell probe only triggers the
// WMIC fallback, and malformed output lines are skipped.
package attach
