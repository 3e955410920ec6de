// Package validation runs a sample file through a validator.Schema.
//
// A run is a single sequential pass: the header is checked once against
// the schema column set, then each row is validated in file order and its
// failures are appended to the result. Only two conditions end a run
// early, an unreadable file and a mismatched header, and each of them is
// reported as the one and only failure of the result.
//
//	runner := validation.NewRunner(
//	    validation.WithProgressEvery(10000),
//	    validation.WithProgress(func(p validation.Progress) {
//	        fmt.Fprintf(os.Stderr, "\r%d rows validated", p.Rows)
//	    }),
//	)
//	res, err := runner.ValidateFile(ctx, "sample.csv", census.NewSchema)
//
// Every run claims its schema. Handing the same schema to a second run
// fails with validator.ErrSchemaReused, which keeps the values seen by
// stateful rules such as uniqueness from leaking between files.
package validation
