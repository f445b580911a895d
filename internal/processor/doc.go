// Package processor contains the core business logic for capturing
// vocabulary into the notebook. It orchestrates translation, IPA lookup,
// audio generation, bulk imports and Anki file generation. This package
// serves as the main coordinator between all other components.
package processor
