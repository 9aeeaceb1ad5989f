/*
Package binpack implements a reader and writer for a compact binary
serialization format for chess training data: dense streams of
(position, move, score, ply, result) tuples.

Each game is stored as an initial position plus a variable-length move
list; every subsequent position is reconstructed by replaying moves
through [Position.MakeMove] rather than being restated explicitly. The
package is built from three layers:

  - a bitboard chess core (Position, MakeMove, attack generation) that the
    codec depends on for deterministic replay,
  - a bit-exact binary codec (CompressedPosition, CompressedMove,
    PackedEntry, and the per-ply move-list bit-stream codec),
  - a chunked container format (ChunkReader/ChunkWriter) with a streaming
    EntryReader/EntryWriter pair on top.

Call [InitAttackTables] once, before using any other function in this
package.
*/
package binpack
