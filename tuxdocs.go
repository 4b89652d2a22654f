// Package tuxdocs provides an AI-augmented browser for classic Linux
// how-to documentation. It serves a fixed catalog of legacy HOWTO
// articles and layers generative-AI features on top: semantic search,
// executive briefs, step-by-step walkthroughs, document modernization,
// a simulated terminal, contextual chat, and AI-assisted review of
// community edit proposals.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or mechanism
// (e.g., mem/, gemini/, http/).
package tuxdocs
