// Package accountant provides the privacy-usage bookkeeping the executor
// and validator share: spreading a scalar usage across columns, scaling
// an effective usage into the actual usage charged against a dataset's
// stability and group size, and converting between a mechanism's privacy
// usage and the accuracy guarantee it implies.
package accountant
