// Package platform contains OS integration: application data directories,
// Android detection and opening folders in the system file manager.
package platform
