// Package wslutil bridges a launcher running inside the Windows Subsystem
// for Linux to browser installs on the Windows side of the boundary.
//
// WSL mounts Windows drives under /mnt/<letter> and ships a `wslpath`
// utility that translates paths in both directions. This package uses those
// two facts to discover Windows install directories from inside Linux:
//
//  1. Walk the process PATH, translate each existing directory to its
//     Windows form, and collect the distinct drive letters that appear.
//  2. For each drive letter, translate "Program Files" and
//     "Program Files (x86)" back to their Linux mount paths.
//  3. Probe every prefix for Microsoft\<channel>\Application\msedge.exe.
//
// Every lookup and translation failure is absorbed; resolution degrades to
// a hardcoded /mnt/c default rather than failing the launch.
//
// A Bridge is constructed with New for production use. Tests construct one
// with fake translate/exists/pathList functions to keep resolution
// deterministic.
package wslutil
