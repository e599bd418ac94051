package ocr

// Package ocr defines abstraction layers for plugging third-party OCR engines
// (for example, Tesseract or cloud services) into the transcript processing
// pipeline. The interfaces are intentionally small and transport-agnostic so
// engines can be backed by local binaries, native libraries, or remote APIs
// without leaking provider-specific concerns into callers. The engine handle
// is always injected by the caller and owned by the process lifecycle; there
// is deliberately no package-level default engine.
