// Package pipeline is the fixture generator: it walks the configured job
// list in order, renders each clip with ffmpeg, and reports a summary.
//
// Jobs are processed one at a time. A job whose folder is missing is skipped;
// a job whose ffmpeg run fails is counted and the loop moves on. Only a
// missing base directory stops the run, before any job starts.
package pipeline
