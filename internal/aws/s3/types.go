package s3

type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}
