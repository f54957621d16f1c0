// Package history persists model load outcomes to the optional database.
//
// A Repository implements assets.Recorder, so wiring it into the loader with
// assets.WithRecorder stores one LoadEvent row per resolved load. Reports over
// the table show which models fall back most often.
package history
