// Package skim fetches news articles, extracts their text, and produces
// length-variant summaries with keyword and sentiment analytics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, gemini/, goquery/).
package skim
