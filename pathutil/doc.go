// Package pathutil locates Microsoft Edge executables across operating systems.
//
// Each resolver is active on exactly one OS and returns an empty string
// everywhere else. An empty result is the "executable not found" sentinel;
// no resolver ever returns an error.
//
// # Cross-Platform Behavior
//
// On Linux:
//   - ResolveNativePath searches the PATH for the channel's binary names
//     (e.g. "microsoft-edge", "microsoft-edge-beta")
//
// On Windows:
//   - ResolveWindowsPath probes %LOCALAPPDATA%, %PROGRAMFILES%, and
//     %PROGRAMFILES(X86)% joined with Microsoft\<channel>\Application\msedge.exe
//   - If no probe hits, the last computed candidate is returned unverified so
//     that the eventual spawn error names a concrete path
//
// On macOS:
//   - ResolveDarwinPath prefers the per-user ~/Applications install and falls
//     back to the conventional /Applications path
//
// # Example
//
//	exe := pathutil.ResolveNativePath("microsoft-edge", "microsoft-edge-stable")
//	if exe == "" {
//	    // not installed natively; the caller decides what to do next
//	}
package pathutil
