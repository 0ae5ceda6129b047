// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the outbound email integration (Brevo, Resend) used to
// relay contact form submissions.
package lib
