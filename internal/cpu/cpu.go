// Package cpu provides CPU feature detection for kernel selection in the
// vectorized complex-arithmetic paths.
//
// Detection runs lazily on the first call to DetectFeatures and is cached for
// subsequent calls.
package cpu

import "sync"

// SIMDLevel represents a SIMD instruction set extension level.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON indicates ARM Advanced SIMD (NEON).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables all SIMD kernels. Testing hook.
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	forcedMutex    sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the CPU features available on the current system.
// Safe for concurrent use; detection runs once and is cached.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// SetForcedFeatures overrides hardware detection. Testing hook only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetForcedFeatures clears any forced features. Testing hook only.
func ResetForcedFeatures() {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()

	forcedFeatures = nil
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
