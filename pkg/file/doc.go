// Package file fetches sample files from where they are published: an S3
// (or S3 compatible) bucket through S3Storage, or a local directory
// through LocalStorage. Both implement Storage.
//
//	store, err := file.NewS3Storage(ctx, file.S3Config{Bucket: "census-sample", Region: "eu-west-2"})
//	if err != nil {
//	    return err
//	}
//	n, err := file.DownloadToFile(ctx, store, "2021/sample.csv", "sample.csv")
//
// S3 errors are classified into sentinel errors such as ErrFileNotFound,
// ErrAccessDenied and ErrBucketNotFound, so callers can branch with
// errors.Is without importing the AWS SDK.
package file
