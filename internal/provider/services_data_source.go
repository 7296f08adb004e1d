package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/firectl/firectl/pkg/fire"
)

// Ensure the implementation satisfies the datasource.DataSource interface.
var _ datasource.DataSource = &ServicesDataSource{}

// NewServicesDataSource is a helper function to simplify the provider implementation.
func NewServicesDataSource() datasource.DataSource {
	return &ServicesDataSource{}
}

// ServicesDataSource is the data source implementation.
type ServicesDataSource struct {
	client *fire.Client
}

// ServicesDataSourceModel describes the data source data model.
type ServicesDataSourceModel struct {
	Type     types.String   `tfsdk:"type"`
	Services []ServiceModel `tfsdk:"services"`
}

// ServiceModel is one service entry.
type ServiceModel struct {
	Name       types.String `tfsdk:"name"`
	InternalID types.String `tfsdk:"internal_id"`
	Type       types.String `tfsdk:"type"`
}

// Metadata returns the data source type name.
func (d *ServicesDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_services"
}

// Schema defines the schema for the data source.
func (d *ServicesDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Fetches all services booked on the account.",
		Attributes: map[string]schema.Attribute{
			"type": schema.StringAttribute{
				MarkdownDescription: "Restrict the result to one service type (KVM, WEBSPACE or DOMAIN)",
				Optional:            true,
			},
			"services": schema.ListNestedAttribute{
				MarkdownDescription: "All services of the account",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"name": schema.StringAttribute{
							MarkdownDescription: "Display name of the service",
							Computed:            true,
						},
						"internal_id": schema.StringAttribute{
							MarkdownDescription: "Internal id used in API paths",
							Computed:            true,
						},
						"type": schema.StringAttribute{
							MarkdownDescription: "Service type",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

// Configure adds the provider configured client to the data source.
func (d *ServicesDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*fire.Client)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *fire.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	d.client = client
}

// Read refreshes the Terraform state with the latest data.
func (d *ServicesDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var config ServicesDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &config)...)
	if resp.Diagnostics.HasError() {
		return
	}

	wantType, err := fire.ParseServiceType(config.Type.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"invalid service type filter",
			err.Error(),
		)
		return
	}

	services, err := d.client.Services.List(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"error listing services",
			fmt.Sprintf("could not list services: %s", err.Error()),
		)
		return
	}

	tflog.Trace(ctx, "listed services", map[string]interface{}{"count": len(services)})

	config.Services = make([]ServiceModel, 0, len(services))
	for _, svc := range services {
		if wantType != fire.ServiceTypeAny && svc.Type != wantType {
			continue
		}
		config.Services = append(config.Services, ServiceModel{
			Name:       types.StringValue(svc.Name),
			InternalID: types.StringValue(svc.InternalID),
			Type:       types.StringValue(string(svc.Type)),
		})
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &config)...)
}
