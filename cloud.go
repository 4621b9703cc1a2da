package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

// Cloud is an immutable <cloud> element describing an rssCloud endpoint that
// subscribers can register with to be notified of channel updates.
type Cloud struct {
	domain            string
	port              string
	path              string
	registerProcedure string
	protocol          string
}

// Domain returns the host of the cloud endpoint.
func (c Cloud) Domain() string {
	return c.domain
}

// Port returns the port in its decimal form, e.g. "80".
func (c Cloud) Port() string {
	return c.port
}

// Path returns the endpoint path, e.g. "/RPC2".
func (c Cloud) Path() string {
	return c.path
}

// RegisterProcedure returns the procedure to call, e.g. "pingMe".
func (c Cloud) RegisterProcedure() string {
	return c.registerProcedure
}

// Protocol returns the protocol, e.g. "soap" or "xml-rpc".
func (c Cloud) Protocol() string {
	return c.protocol
}

// CloudBuilder configures a Cloud.
//
// Example:
//
//	cloud, err := rssfeed.NewCloudBuilder().
//	    Domain("http://rpc.sys.com/").
//	    Port(80).
//	    Path("/RPC2").
//	    RegisterProcedure("pingMe").
//	    Protocol("soap").
//	    Build()
type CloudBuilder struct {
	domain            string
	port              int64
	path              string
	registerProcedure string
	protocol          string
}

// NewCloudBuilder returns a builder with every field unset.
func NewCloudBuilder() *CloudBuilder {
	return &CloudBuilder{}
}

// Domain sets the cloud domain.
func (b *CloudBuilder) Domain(domain string) *CloudBuilder {
	b.domain = domain
	return b
}

// Port sets the cloud port.
func (b *CloudBuilder) Port(port int64) *CloudBuilder {
	b.port = port
	return b
}

// Path sets the cloud path.
func (b *CloudBuilder) Path(path string) *CloudBuilder {
	b.path = path
	return b
}

// RegisterProcedure sets the register procedure.
func (b *CloudBuilder) RegisterProcedure(procedure string) *CloudBuilder {
	b.registerProcedure = procedure
	return b
}

// Protocol sets the cloud protocol.
func (b *CloudBuilder) Protocol(protocol string) *CloudBuilder {
	b.protocol = protocol
	return b
}

// Validate checks the domain is a URL and the port is not negative.
func (b *CloudBuilder) Validate() (*CloudBuilder, error) {
	if err := validate.URL("domain", b.domain); err != nil {
		return nil, err
	}
	if err := validate.NonNegative("port", b.port); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize converts the port to text and constructs the Cloud.
func (b *CloudBuilder) Finalize() (Cloud, error) {
	port, err := stringutil.Int64ToString(b.port)
	if err != nil {
		return Cloud{}, validate.Nested("port", err)
	}

	return Cloud{
		domain:            b.domain,
		port:              port,
		path:              b.path,
		registerProcedure: b.registerProcedure,
		protocol:          b.protocol,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *CloudBuilder) Build() (Cloud, error) {
	if _, err := b.Validate(); err != nil {
		return Cloud{}, err
	}
	return b.Finalize()
}
