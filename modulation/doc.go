// Package modulation synthesizes message, carrier and modulated waveforms
// for the analog schemes AM, FM, PM, DSB-SC and SSB and the digital schemes
// ASK, FSK, BPSK and QPSK.
//
// A [Generator] is a pure function of its [Params]: numeric parameters are
// silently clamped to the ranges held in its [Config], bit strings are
// filtered to '0'/'1' characters (falling back to the pattern 0101 when
// nothing remains), and every returned sequence shares one time axis of
// Duration*SampleRate samples. The only rejected input is an unknown
// scheme, reported as [ErrUnsupportedScheme].
//
// The message output is a [Message] sum type: [Baseband] for every scheme
// except QPSK, which returns the two-channel [BasebandIQ]. The modulation
// index is an [Index] that is undefined for QPSK.
//
// Generators are immutable and safe for concurrent use.
package modulation
