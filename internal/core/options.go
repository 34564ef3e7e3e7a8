package core

// PublishOptions controls how strictly a run treats failures that the
// default contract absorbs
type PublishOptions struct {
	StrictProbe bool // Stop searching on probe errors other than absence
	StrictLink  bool // Report link creation failure through the exit code
}
