package types

type (
	ContainerName   string
	BlobName        string
	BucketName      string
	GoogleProjectID string
	SecretID        string
)

func (x ContainerName) String() string   { return string(x) }
func (x BlobName) String() string        { return string(x) }
func (x BucketName) String() string      { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x SecretID) String() string        { return string(x) }

// ContentTypeJSON is attached to every published blob
const ContentTypeJSON = "application/json"
