/*
Package vectors reads and writes files of recorded equihash verification cases.

A vector file is a single CBOR map using small integer keys:

	{
	  1: version (currently 1),
	  2: [ vector, ... ]
	}

and each vector is

	{
	  1: name,
	  2: N,
	  3: K,
	  4: personalization prefix,
	  5: header bytes,
	  6: solution bytes,
	  7: expected validity
	}

Files are written with the core deterministic encoding and read strictly:
duplicate keys, indefinite length items and unknown keys are errors.

Known returns the built in reference solutions in this form, File.Jobs turns a
file into batch jobs, and File.Check compares the batch results with what the
file says they should be.
*/
package vectors
