// Package syncmap offers a generic, concurrency-safe map guarded by a
// sync.RWMutex. The tool registry keys it by tool name.
package syncmap
