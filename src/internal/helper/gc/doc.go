// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library behind small interfaces so the artifact
// library can read spec and stub files, and the MCP logger can encode log lines,
// without allocating a fresh buffer per request.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
