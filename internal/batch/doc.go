// Package batch runs the watermark renderer over every video in a folder.
//
// Run discovers eligible files (non-recursive, case-sensitive .mp4, .avi,
// .mov and .mkv suffixes), builds one render.Job per file, enqueues them
// all and drains the queue with a fixed pool of workers. A job's failure,
// timeout or panic is logged and counted; it never stops its siblings.
// Run returns only after every job has finished.
//
// Files:
//   - discover.go: Discover, IsVideo
//   - jobs.go: BuildJobs
//   - runner.go: Run, the worker pool and per-job handling
//   - stats.go: RunStats and the header/summary logs
package batch
