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
var _ datasource.DataSource = &KVMStatusDataSource{}

// NewKVMStatusDataSource is a helper function to simplify the provider implementation.
func NewKVMStatusDataSource() datasource.DataSource {
	return &KVMStatusDataSource{}
}

// KVMStatusDataSource is the data source implementation.
type KVMStatusDataSource struct {
	client *fire.Client
}

// KVMStatusDataSourceModel describes the data source data model.
type KVMStatusDataSourceModel struct {
	Name       types.String `tfsdk:"name"`
	InternalID types.String `tfsdk:"internal_id"`
	State      types.String `tfsdk:"state"`
}

// Metadata returns the data source type name.
func (d *KVMStatusDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_kvm_status"
}

// Schema defines the schema for the data source.
func (d *KVMStatusDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Fetches the live status of a KVM server.",
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				MarkdownDescription: "Service name or internal id of the KVM server",
				Required:            true,
			},
			"internal_id": schema.StringAttribute{
				MarkdownDescription: "Internal id used in API paths",
				Computed:            true,
			},
			"state": schema.StringAttribute{
				MarkdownDescription: "Current VM state (running, stopped, ...)",
				Computed:            true,
			},
		},
	}
}

// Configure adds the provider configured client to the data source.
func (d *KVMStatusDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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
func (d *KVMStatusDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var config KVMStatusDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &config)...)
	if resp.Diagnostics.HasError() {
		return
	}

	svc, err := d.client.Services.Resolve(ctx, config.Name.ValueString(), fire.ServiceTypeKVM)
	if err != nil {
		resp.Diagnostics.AddError(
			"error resolving service",
			fmt.Sprintf("could not resolve KVM server %s: %s", config.Name.ValueString(), err.Error()),
		)
		return
	}

	status, err := d.client.KVM.Status(ctx, svc.InternalID)
	if err != nil {
		resp.Diagnostics.AddError(
			"error reading kvm status",
			fmt.Sprintf("could not read status of %s: %s", svc.Name, err.Error()),
		)
		return
	}

	tflog.Trace(ctx, "read kvm status", map[string]interface{}{"internal_id": svc.InternalID})

	state, _ := status["vm_state"].(string)

	config.InternalID = types.StringValue(svc.InternalID)
	config.State = types.StringValue(state)

	resp.Diagnostics.Append(resp.State.Set(ctx, &config)...)
}
