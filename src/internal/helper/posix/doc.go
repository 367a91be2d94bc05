// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides small [POSIX]-flavoured helpers shared by the CLI.
//
// Its one job today is naming the running binary for usage strings and the
// rendered help template, regardless of whether it was launched as
// "/usr/local/bin/acm-artifact-resolver" or "C:\tools\acm-artifact-resolver.exe":
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
