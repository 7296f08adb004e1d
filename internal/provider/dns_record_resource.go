package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/firectl/firectl/pkg/fire"
)

// Ensure the implementation satisfies the resource.Resource interface.
var _ resource.Resource = &DNSRecordResource{}
var _ resource.ResourceWithImportState = &DNSRecordResource{}

// NewDNSRecordResource is a helper function to simplify the provider implementation.
func NewDNSRecordResource() resource.Resource {
	return &DNSRecordResource{}
}

// DNSRecordResource is the resource implementation.
type DNSRecordResource struct {
	client *fire.Client
}

// DNSRecordResourceModel describes the resource data model.
type DNSRecordResourceModel struct {
	Domain types.String `tfsdk:"domain"`
	ID     types.String `tfsdk:"id"`
	Type   types.String `tfsdk:"type"`
	Name   types.String `tfsdk:"name"`
	Data   types.String `tfsdk:"data"`
}

// Metadata returns the resource type name.
func (r *DNSRecordResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_dns_record"
}

// Schema defines the schema for the resource.
func (r *DNSRecordResource) Schema(_ context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Manages a DNS record of a domain booked with 24fire.",
		Attributes: map[string]schema.Attribute{
			"domain": schema.StringAttribute{
				MarkdownDescription: "Domain name or internal id the record belongs to",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"id": schema.StringAttribute{
				MarkdownDescription: "Record id assigned by the panel",
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"type": schema.StringAttribute{
				MarkdownDescription: "Record type (A, AAAA, CNAME, MX, TXT, ...)",
				Required:            true,
			},
			"name": schema.StringAttribute{
				MarkdownDescription: "Record name",
				Required:            true,
			},
			"data": schema.StringAttribute{
				MarkdownDescription: "Record data",
				Required:            true,
			},
		},
	}
}

// Configure adds the provider configured client to the resource.
func (r *DNSRecordResource) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*fire.Client)
	if !ok {
		resp.Diagnostics.AddError(
			"unexpected resource configure type",
			fmt.Sprintf("expected *fire.Client, got: %T. please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	r.client = client
}

// resolveDomain maps the configured domain identifier to its internal id.
func (r *DNSRecordResource) resolveDomain(ctx context.Context, identifier string) (*fire.Service, error) {
	return r.client.Services.Resolve(ctx, identifier, fire.ServiceTypeDomain)
}

// Create creates the resource and sets the initial Terraform state.
func (r *DNSRecordResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var plan DNSRecordResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}

	svc, err := r.resolveDomain(ctx, plan.Domain.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"error resolving domain",
			fmt.Sprintf("could not resolve domain %s: %s", plan.Domain.ValueString(), err.Error()),
		)
		return
	}

	record, err := r.client.Domain.AddDNS(ctx, svc.InternalID,
		plan.Type.ValueString(), plan.Name.ValueString(), plan.Data.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"error creating dns record",
			fmt.Sprintf("could not create dns record for %s: %s", svc.Name, err.Error()),
		)
		return
	}

	tflog.Trace(ctx, "created dns record", map[string]interface{}{"record_id": record.ID})

	plan.ID = types.StringValue(record.ID)
	plan.Type = types.StringValue(record.Type)
	plan.Name = types.StringValue(record.Name)
	plan.Data = types.StringValue(record.Data)

	resp.Diagnostics.Append(resp.State.Set(ctx, &plan)...)
}

// Read refreshes the Terraform state with the latest data.
func (r *DNSRecordResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var state DNSRecordResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &state)...)
	if resp.Diagnostics.HasError() {
		return
	}

	svc, err := r.resolveDomain(ctx, state.Domain.ValueString())
	if err != nil {
		if fire.IsNotFoundError(err) {
			// Domain was cancelled outside of Terraform
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(
			"error resolving domain",
			fmt.Sprintf("could not resolve domain %s: %s", state.Domain.ValueString(), err.Error()),
		)
		return
	}

	// The panel has no per-record endpoint, list and pick.
	records, err := r.client.Domain.ListDNS(ctx, svc.InternalID)
	if err != nil {
		resp.Diagnostics.AddError(
			"error reading dns records",
			fmt.Sprintf("could not read dns records of %s: %s", svc.Name, err.Error()),
		)
		return
	}

	var found *fire.DNSRecord
	for i := range records {
		if records[i].ID == state.ID.ValueString() {
			found = &records[i]
			break
		}
	}
	if found == nil {
		// Record was removed outside of Terraform
		resp.State.RemoveResource(ctx)
		return
	}

	state.Type = types.StringValue(found.Type)
	state.Name = types.StringValue(found.Name)
	state.Data = types.StringValue(found.Data)

	resp.Diagnostics.Append(resp.State.Set(ctx, &state)...)
}

// Update updates the resource and sets the updated Terraform state.
func (r *DNSRecordResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan DNSRecordResourceModel
	var state DNSRecordResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	resp.Diagnostics.Append(req.State.Get(ctx, &state)...)
	if resp.Diagnostics.HasError() {
		return
	}

	svc, err := r.resolveDomain(ctx, plan.Domain.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"error resolving domain",
			fmt.Sprintf("could not resolve domain %s: %s", plan.Domain.ValueString(), err.Error()),
		)
		return
	}

	record, err := r.client.Domain.EditDNS(ctx, svc.InternalID, state.ID.ValueString(),
		plan.Type.ValueString(), plan.Name.ValueString(), plan.Data.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"error updating dns record",
			fmt.Sprintf("could not update dns record %s: %s", state.ID.ValueString(), err.Error()),
		)
		return
	}

	plan.ID = types.StringValue(record.ID)
	plan.Type = types.StringValue(record.Type)
	plan.Name = types.StringValue(record.Name)
	plan.Data = types.StringValue(record.Data)

	resp.Diagnostics.Append(resp.State.Set(ctx, &plan)...)
}

// Delete deletes the resource and removes the Terraform state.
func (r *DNSRecordResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var state DNSRecordResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &state)...)
	if resp.Diagnostics.HasError() {
		return
	}

	svc, err := r.resolveDomain(ctx, state.Domain.ValueString())
	if err != nil {
		if fire.IsNotFoundError(err) {
			return
		}
		resp.Diagnostics.AddError(
			"error resolving domain",
			fmt.Sprintf("could not resolve domain %s: %s", state.Domain.ValueString(), err.Error()),
		)
		return
	}

	if err := r.client.Domain.RemoveDNS(ctx, svc.InternalID, state.ID.ValueString()); err != nil {
		if !fire.IsNotFoundError(err) {
			resp.Diagnostics.AddError(
				"error deleting dns record",
				fmt.Sprintf("could not delete dns record %s: %s", state.ID.ValueString(), err.Error()),
			)
			return
		}
	}
}

// ImportState imports an existing resource into Terraform.
func (r *DNSRecordResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	// The import ID is "domain/record_id"
	parts := strings.SplitN(req.ID, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		resp.Diagnostics.AddError(
			"invalid import id",
			fmt.Sprintf("expected import id in the form domain/record_id, got: %s", req.ID),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("domain"), parts[0])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("id"), parts[1])...)
}
