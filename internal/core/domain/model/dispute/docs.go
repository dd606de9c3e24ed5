// Package dispute contains the Dispute entity: the record created when the
// sender or recipient of a package files a dispute. The system only tracks
// that a dispute exists and who filed it; adjudication is an external
// process and no resolution state is modelled here.
package dispute
