/*
LIBCRC computes the cyclic redundancy check of a file for any polynomial,
register width and shift direction.

	libcrc [flags] FILE

The file is read in fixed size chunks. The crc of each chunk seeds the next,
so the result is the same as computing over the whole file at once.

Command-line Flags:

	-poly=0x1021

Sets the polynomial in natural (msb-first) notation, without the implicit top
bit. Accepts decimal, octal (0 prefix) or hexadecimal (0x prefix). Must fit
the register width. When shifting right the polynomial is reflected
internally, so 0x04C11DB7 rather than 0xEDB88320 selects the usual CRC-32.

	-seed=0x0

Sets the initial register value. Pass the crc of preceding data to continue a
computation. No final XOR is applied; apply it to the printed value yourself.

	-width=16

Sets the register width in bits: 8, 16, 32 or 64.

	-shift="right"

Sets the shift direction. Left consumes bits msb-first, right consumes bits
lsb-first.

	-table=false

Computes using a 256 entry lookup table built at startup instead of bit by bit.

	-dumptable=false

Prints the lookup table after the crc. Implies -table.

	-bufsize=4096

Sets the size in bytes of each chunk read from the file.

	-format="plain"

Sets the output format: plain, csv, json or xml. Plain text has the following
form:

	File      : check.txt
	Algorithm : CRC16 (left shift, direct)
	Length    : 9
	Polynomial: 1021
	Seed      : 0000
	CRC       : 31C3

For csv, json and xml output each line is a record, there is no root node.

	-verbose=false

Logs configuration and progress to stderr.

	-version=false

Displays build tag, date and commit hash.

Every flag may also be set by an environment variable named LIBCRC_ followed
by the flag name in upper case, for example LIBCRC_WIDTH=32. Flags given on
the command line take precedence.

Computing CRC-32 of a file:

	libcrc -width=32 -poly=0x04C11DB7 -seed=0xFFFFFFFF -shift=right FILE

and XOR the printed CRC with FFFFFFFF.
*/
package main
