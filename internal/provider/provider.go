// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"os"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"go.uber.org/zap"

	"github.com/firectl/firectl/pkg/fire"
)

// Ensure FireProvider satisfies various provider interfaces.
var _ provider.Provider = &FireProvider{}

// FireProvider defines the provider implementation.
type FireProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// FireProviderModel describes the provider data model.
type FireProviderModel struct {
	APIKey types.String `tfsdk:"api_key"`
}

func (p *FireProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "fire"
	resp.Version = p.version
}

func (p *FireProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "24fire Hosting Provider",
		Attributes: map[string]schema.Attribute{
			"api_key": schema.StringAttribute{
				MarkdownDescription: "24fire API key. Can also be set via FIRE_API_KEY environment variable.",
				Optional:            true,
				Sensitive:           true,
			},
		},
	}
}

func (p *FireProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data FireProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	// Get the API key from configuration or environment variable
	apiKey := data.APIKey.ValueString()
	if apiKey == "" {
		apiKey = os.Getenv("FIRE_API_KEY")
	}

	if apiKey == "" {
		resp.Diagnostics.AddError(
			"missing api key configuration",
			"api_key must be set in provider configuration or via FIRE_API_KEY environment variable",
		)
		return
	}

	var opts []fire.ClientOption

	// Enable request logging if FIRE_DEBUG environment variable is set
	if os.Getenv("FIRE_DEBUG") != "" {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, fire.WithLogger(logger))
		}
	}

	client := fire.NewClient(apiKey, opts...)

	resp.DataSourceData = client
	resp.ResourceData = client
}

func (p *FireProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewDNSRecordResource,
	}
}

func (p *FireProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewServicesDataSource,
		NewKVMStatusDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &FireProvider{
			version: version,
		}
	}
}
